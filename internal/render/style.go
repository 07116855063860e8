package render

// stylesheet is embedded into every document so the output needs no
// external assets.
const stylesheet = `
body {
    font-family: Arial, sans-serif;
    max-width: 800px;
    margin: 0 auto;
    padding: 20px;
    background-color: #f5f5f5;
}
.section {
    margin-bottom: 40px;
}
.section-title {
    text-align: center;
    color: #333;
    padding: 20px;
    background-color: #fff;
    border-radius: 5px;
    margin-bottom: 20px;
    box-shadow: 0 2px 5px rgba(0,0,0,0.1);
}
.entry {
    background-color: #fff;
    padding: 20px;
    margin-bottom: 20px;
    border-radius: 5px;
    box-shadow: 0 2px 5px rgba(0,0,0,0.1);
}
.entry-title {
    color: #2c3e50;
    margin-top: 0;
}
.entry-meta {
    color: #7f8c8d;
    font-size: 0.9em;
    margin-bottom: 10px;
}
.entry-content {
    color: #34495e;
    line-height: 1.6;
}
.entry-link {
    display: inline-block;
    margin-top: 10px;
    color: #3498db;
    text-decoration: none;
}
.entry-link:hover {
    text-decoration: underline;
}
.timestamp {
    text-align: center;
    color: #95a5a6;
    font-size: 0.8em;
    margin-top: 20px;
}
.weather-section {
    background-color: #fff;
    padding: 20px;
    border-radius: 5px;
    margin-bottom: 40px;
    box-shadow: 0 2px 5px rgba(0,0,0,0.1);
}
.source-list {
    background-color: #fff;
    padding: 20px 20px 20px 40px;
    border-radius: 5px;
    box-shadow: 0 2px 5px rgba(0,0,0,0.1);
}
.source-list li {
    margin-bottom: 10px;
}
.source-list a {
    color: #3498db;
    text-decoration: none;
}
`
